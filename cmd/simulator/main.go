package main

import (
	"encoding/json"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/crabbyteti/tambak-monitor/internal/config"
)

type reading struct {
	TambakID   int       `json:"tambak_id"`
	Suhu       float64   `json:"suhu"`
	Salinitas  float64   `json:"salinitas"`
	Ph         float64   `json:"ph"`
	RecordedAt time.Time `json:"recorded_at"`
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	for i := 0; i < 100; i++ {
		r := reading{
			TambakID:   1 + rand.Intn(3),
			Suhu:       27 + rand.Float64()*4,
			Salinitas:  14 + rand.Float64()*4,
			Ph:         7 + rand.Float64(),
			RecordedAt: time.Now(),
		}
		payload, _ := json.Marshal(r)
		token := client.Publish(config.MQTTTopic(), 0, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
