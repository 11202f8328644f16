// Package main runs the wren URL shortener.
//
//	@title			Wren URL Shortener API
//	@version		1.0
//	@description	Maps full URLs to short identifiers and back
//	@BasePath		/
//	@schemes		http https
package main

import (
	"go.uber.org/fx"

	_ "github.com/sp3dr4/wren/docs"
	wrenfx "github.com/sp3dr4/wren/internal/fx"
)

func main() {
	fx.New(wrenfx.HTTPServerModules).Run()
}
