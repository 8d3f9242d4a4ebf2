//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// go:embed 不能引用上级目录，构建移动端包之前需要先把仓库根目录的
// data/ 复制到此目录（见 mobile.go 顶部的构建命令）。
package mobile

import "embed"

//go:embed data
var dataFS embed.FS
