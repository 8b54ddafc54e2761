package azure

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/google/uuid"
)

// BlobStore 封装 Azure Blob 容器，上传图片并返回公开 URL
type BlobStore struct {
	client    *azblob.Client
	container string
}

// NewBlobStore 连接串为空时也返回实例，到真正上传时才报错，
// 这样没配置 Azure 的环境照样能起服务
func NewBlobStore(connectionString, container string) (*BlobStore, error) {
	s := &BlobStore{container: container}
	if connectionString == "" {
		return s, nil
	}

	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

// Upload 去掉 data-URI 前缀，解码 base64，按时间戳+随机名落到容器里
func (s *BlobStore) Upload(ctx context.Context, base64Image string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("AZURE_STORAGE_CONNECTION_STRING is not set")
	}

	data := base64Image
	if i := strings.IndexByte(data, ','); i >= 0 {
		data = data[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if err := s.ensureContainer(ctx); err != nil {
		return "", err
	}

	name := fmt.Sprintf("post-%d-%s.jpg", time.Now().UnixMilli(), uuid.NewString())
	contentType := "image/jpeg"
	_, err = s.client.UploadBuffer(ctx, s.container, name, raw, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return "", err
	}

	return s.client.ServiceClient().NewContainerClient(s.container).NewBlobClient(name).URL(), nil
}

// UploadMany 逐张上传，任何一张失败整体视为失败（调用方不得假设部分成功）
func (s *BlobStore) UploadMany(ctx context.Context, base64Images []string) ([]string, error) {
	urls := make([]string, 0, len(base64Images))
	for _, img := range base64Images {
		url, err := s.Upload(ctx, img)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *BlobStore) ensureContainer(ctx context.Context) error {
	access := azblob.PublicAccessTypeBlob
	_, err := s.client.CreateContainer(ctx, s.container, &azblob.CreateContainerOptions{
		Access: &access,
	})
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return err
	}
	return nil
}
