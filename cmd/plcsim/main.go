// cmd/plcsim/main.go
package main

func main() {
	Execute()
}
