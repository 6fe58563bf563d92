// Package archive 保存导出的工作簿，配置了 Bucket 时上传到 S3 兼容存储，否则写入本地目录
package archive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/dto"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Store 导出归档的存储后端
type Store interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (*dto.ArchiveResult, error)
}

var Default Store

// Init 按配置选择存储后端
func Init(ctx context.Context) error {
	s, err := New(ctx, config.Get().Archive)
	if err != nil {
		return err
	}
	Default = s
	return nil
}

func New(ctx context.Context, cfg config.Archive) (Store, error) {
	if cfg.Bucket == "" {
		return &LocalStore{Dir: cfg.LocalDir, BaseURL: cfg.BaseURL, Prefix: cfg.Prefix}, nil
	}
	return NewS3Store(ctx, cfg)
}

// objectKey 生成 <prefix>/<日期>/<uuid>_<文件名>，同名导出不会互相覆盖
func objectKey(prefix, filename string, now time.Time) string {
	name := uuid.NewString() + "_" + path.Base(filename)
	return strings.TrimLeft(path.Join(strings.Trim(prefix, "/"), now.Format("2006-01-02"), name), "/")
}

// LocalStore 写入本地目录，URL 由 BaseURL 拼出；BaseURL 为空时返回文件路径
type LocalStore struct {
	Dir     string
	BaseURL string
	Prefix  string
}

func (s *LocalStore) Put(_ context.Context, filename, _ string, data []byte) (*dto.ArchiveResult, error) {
	key := objectKey(s.Prefix, filename, time.Now())
	target := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return nil, err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return nil, err
	}

	url := target
	if s.BaseURL != "" {
		url = strings.TrimRight(s.BaseURL, "/") + "/" + key
	}
	return &dto.ArchiveResult{Key: key, URL: url}, nil
}

// S3Store 上传到 S3 兼容存储，并返回预签名下载链接
type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
	expire   time.Duration
}

func NewS3Store(ctx context.Context, cfg config.Archive) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		prefix:   cfg.Prefix,
		expire:   time.Duration(cfg.URLExpire) * time.Second,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, filename, contentType string, data []byte) (*dto.ArchiveResult, error) {
	key := objectKey(s.prefix, filename, time.Now())
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(data),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", path.Base(filename))),
	})
	if err != nil {
		return nil, fmt.Errorf("上传导出文件失败: %w", err)
	}

	presigned, err := s3.NewPresignClient(s.client).PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.expire
	})
	if err != nil {
		return nil, fmt.Errorf("生成预签名下载 URL 失败: %w", err)
	}

	return &dto.ArchiveResult{
		Key:       key,
		URL:       presigned.URL,
		ExpiresAt: time.Now().Add(s.expire).Unix(),
	}, nil
}
