/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "docgpt/cmd"

func main() {
	cmd.Execute()
}
