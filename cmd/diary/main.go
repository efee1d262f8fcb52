package main

import "diarykeeper/cmd/diary/cmd"

func main() {
	cmd.Execute()
}
