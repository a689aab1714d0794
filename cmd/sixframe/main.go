// cmd/sixframe/main.go
package main

import (
	"sixframe/internal/app"
	"sixframe/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
