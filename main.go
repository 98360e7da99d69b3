package main

import "github.com/lehigh-university-libraries/medline/cmd"

func main() {
	cmd.Execute()
}
