package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/automoto/puppethands/recording"
	"github.com/joho/godotenv"
)

// LoadEnv overrides the defaults from the environment, reading a .env file
// first if one exists. It fails if the resulting loop config is unusable.
func LoadEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv("PUPPET_LOOP_POLICY"); v != "" {
		policy, err := recording.ParseLoopPolicy(v)
		if err != nil {
			return fmt.Errorf("PUPPET_LOOP_POLICY: %w", err)
		}
		Playback.Loop.Policy = policy
	}
	Playback.Loop.Period = getEnvFloat("PUPPET_LOOP_PERIOD", Playback.Loop.Period)
	Playback.Loop.BasePeriod = getEnvFloat("PUPPET_BASE_PERIOD", Playback.Loop.BasePeriod)
	Playback.MaxSnapshots = getEnvInt("PUPPET_MAX_SNAPSHOTS", Playback.MaxSnapshots)

	Server.Port = uint(getEnvInt("PUPPET_SERVER_PORT", int(Server.Port)))
	Server.TickRate = getEnvInt("PUPPET_TICK_RATE", Server.TickRate)

	MQTT.Enabled = getEnvBool("MQTT_ENABLED", MQTT.Enabled)
	MQTT.Broker = getEnv("MQTT_BROKER", MQTT.Broker)
	MQTT.ClientID = getEnv("MQTT_CLIENT_ID", MQTT.ClientID)
	MQTT.Username = getEnv("MQTT_USERNAME", MQTT.Username)
	MQTT.Password = getEnv("MQTT_PASSWORD", MQTT.Password)
	MQTT.FrameTopic = getEnv("MQTT_TOPIC_FRAME", MQTT.FrameTopic)
	MQTT.PoseTopic = getEnv("MQTT_TOPIC_POSE", MQTT.PoseTopic)

	Archive.Enabled = getEnvBool("CLICKHOUSE_ENABLED", Archive.Enabled)
	Archive.Addr = getEnv("CLICKHOUSE_ADDR", Archive.Addr)
	Archive.Database = getEnv("CLICKHOUSE_DB", Archive.Database)
	Archive.Username = getEnv("CLICKHOUSE_USER", Archive.Username)
	Archive.Password = getEnv("CLICKHOUSE_PASS", Archive.Password)

	if Server.TickRate <= 0 {
		return fmt.Errorf("PUPPET_TICK_RATE must be positive, got %d", Server.TickRate)
	}
	if err := Playback.Loop.Validate(); err != nil {
		return fmt.Errorf("playback loop: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: failed to parse %s as float, using default: %v", key, err)
		return defaultValue
	}
	return floatValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: failed to parse %s as int, using default: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: failed to parse %s as bool, using default: %v", key, err)
		return defaultValue
	}
	return boolValue
}
