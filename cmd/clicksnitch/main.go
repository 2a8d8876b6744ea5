// Package main provides the clicksnitch command.
package main

func main() {
	Execute()
}
