// chromagen is a command-line front end for the chroma color engine:
// parsing, conversion, shade scales, themes, schemes, gradients, and
// accessibility checks.
package main

func main() {
	Execute()
}
