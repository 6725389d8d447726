package main

import (
	"os"

	"hotelbook/config"
	"hotelbook/helper"
	"hotelbook/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate <up|down|step-up|drop>"

func main() {
	logger.InitLogger()

	if len(os.Args) != 2 {
		log.Fatal().Msg(usage)
	}

	action := os.Args[1]
	switch action {
	case helper.ActionUp, helper.ActionDown, helper.ActionStepUp, helper.ActionDrop:
	default:
		log.Fatal().Str("action", action).Msg(usage)
	}

	if err := helper.Runner(config.Get(), action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("migration failed")
	}
}
