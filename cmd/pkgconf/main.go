package main

import "github.com/goplus/pkgconfig/cmd/pkgconf/internal"

func main() {
	internal.Execute()
}
