package main

import (
	"os"

	"github.com/bombahead/client/pkg/bot"
	"github.com/bombahead/client/pkg/helpers"
)

func main() {
	os.Exit(helpers.Main(func() bot.Agent { return bot.Idle{} }))
}
