package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"alpstech-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilename(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "1700000000000-hw.pdf", BuildFilename(now, "hw.pdf"))
	// 原始文件名中的目录部分被丢弃
	assert.Equal(t, "1700000000000-hw.pdf", BuildFilename(now, "../../hw.pdf"))
}

func TestIsPDF(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "hw.pdf", Header: textproto.MIMEHeader{}}
	fh.Header.Set("Content-Type", "application/pdf")
	assert.True(t, IsPDF(fh))

	fh.Header.Set("Content-Type", "text/plain")
	assert.False(t, IsPDF(fh))
}

func TestSavePDFValidation(t *testing.T) {
	s := &LocalStorage{dir: t.TempDir()}

	_, err := s.SavePDF(nil)
	assert.ErrorIs(t, err, consts.ErrPDFRequired)

	fh := &multipart.FileHeader{Filename: "hw.txt", Header: textproto.MIMEHeader{}}
	fh.Header.Set("Content-Type", "text/plain")
	_, err = s.SavePDF(fh)
	assert.ErrorIs(t, err, consts.ErrOnlyPDF)
}

func TestSavePDFRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="pdf"; filename="hw.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()
	fh := form.File["pdf"][0]

	s := &LocalStorage{dir: t.TempDir()}
	name, err := s.SavePDF(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-hw.pdf"))

	path, err := s.Path(name)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))
}

func TestPathNotFound(t *testing.T) {
	s := &LocalStorage{dir: t.TempDir()}

	_, err := s.Path("missing.pdf")
	assert.ErrorIs(t, err, consts.ErrPDFNotFound)

	// 路径穿越被Base拦住
	secret := filepath.Join(t.TempDir(), "secret.pdf")
	require.NoError(t, os.WriteFile(secret, []byte("x"), 0o644))
	_, err = s.Path("../" + secret)
	assert.ErrorIs(t, err, consts.ErrPDFNotFound)
}
