package tools

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SendAttachment 以附件形式返回内存中的文件，文件名按 RFC 5987 编码
func SendAttachment(c *gin.Context, filename, contentType string, data []byte) {
	escaped := url.PathEscape(filename)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}
