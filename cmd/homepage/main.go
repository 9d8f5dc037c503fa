// Command homepage serves and manages block-based home pages.
package main

func main() {
	Execute()
}
