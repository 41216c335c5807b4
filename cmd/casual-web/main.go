// Command casual-web serves the casual ERP web frontend on top of casual-cli.
package main

func main() {
	Execute()
}
