//go:build !mobile

package main

import "embed"

// dataFS 嵌入游戏数据（礼物清单等）
//
//go:embed data
var dataFS embed.FS
