// Package static 内嵌前端页面
package static

import "embed"

//go:embed index.html app.js styles.css
var Assets embed.FS
