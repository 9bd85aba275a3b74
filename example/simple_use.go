package main

import (
	"fmt"

	"github.com/leandrodaf/mixer/internal/logger"
	"github.com/leandrodaf/mixer/sdk/contracts"
	"github.com/leandrodaf/mixer/sdk/mixer"
)

func main() {
	log := logger.NewZapLogger()

	client, err := mixer.NewMixerClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		log.Error("Failed to initialize mixer client", log.Field().Error("error", err))
		return
	}
	defer client.Stop()

	card := client.Card()
	fmt.Printf("Selected card %d: %s\n", card.Index, card.Name)

	controls, err := client.ListControls()
	if err != nil {
		log.Error("Failed to list controls", log.Field().Error("error", err))
		return
	}
	for _, c := range controls {
		fmt.Printf("numid=%d %-40s %s %v\n", c.Numid, c.Name, c.GroupedLabel, c.Values)
	}

	routing := mixer.BuildRoutingIndex(controls)
	fmt.Printf("analog routes: %d, digital routes: %d\n",
		len(routing.AnalogRoutes), len(routing.DigitalRoutes))

	signal, err := client.StartWatch(nil)
	if err != nil {
		log.Error("Failed to start change watcher", log.Field().Error("error", err))
		return
	}

	fmt.Println("Watching for hardware changes... Press Ctrl+C to exit.")
	for range signal {
		changed, err := client.RefreshControlValues(controls)
		if err != nil {
			log.Error("Refresh failed", log.Field().Error("error", err))
			return
		}
		fmt.Printf("hardware changed: %d control(s) updated\n", changed)
	}
}
