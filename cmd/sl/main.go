package main

import "github.com/hiagosil/sistemalevelup/cmd/sl/root"

func main() {
	root.Execute()
}
