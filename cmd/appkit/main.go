package main

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/appkit/pkg/app"
)

func main() {
	fx.New(app.Module).Run()
}
