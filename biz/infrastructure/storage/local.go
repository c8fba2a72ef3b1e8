package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/consts"
)

// LocalStorage 管理上传的作业PDF, 文件名为 时间戳-原始文件名
// 与线上数据保持一致: 不做去重, 不做校验和
type LocalStorage struct {
	dir string
}

func NewLocalStorage(config *config.Config) *LocalStorage {
	return &LocalStorage{dir: config.Upload.Dir}
}

// SavePDF 校验并落盘一个PDF文件, 返回存储文件名
func (s *LocalStorage) SavePDF(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", consts.ErrPDFRequired
	}
	if !IsPDF(fh) {
		return "", consts.ErrOnlyPDF
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := BuildFilename(time.Now(), fh.Filename)
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", err
	}
	return name, nil
}

// Path 返回存储文件的完整路径, 文件不存在时报 ErrPDFNotFound
func (s *LocalStorage) Path(name string) (string, error) {
	p := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(p); err != nil {
		return "", consts.ErrPDFNotFound
	}
	return p, nil
}

// IsPDF 仅按声明的Content-Type过滤
func IsPDF(fh *multipart.FileHeader) bool {
	ct := fh.Header.Get("Content-Type")
	return strings.EqualFold(ct, consts.PDFContentType)
}

// BuildFilename 时间戳毫秒 + 原始文件名
func BuildFilename(now time.Time, original string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), filepath.Base(original))
}
