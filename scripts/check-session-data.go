package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Minimal shape to validate persisted sessions without importing the app
type sessionRecord struct {
	Version  int    `json:"version"`
	PlayerID string `json:"playerId"`
}

const currentSchemaVersion = 1

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for broken session records...")

	iter := client.Scan(ctx, 0, "session:*", 0).Iterator()

	var brokenKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record sessionRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			brokenKeys = append(brokenKeys, key)
			continue
		}

		if record.Version != currentSchemaVersion {
			fmt.Printf("✗ Unsupported schema version %d in %s\n", record.Version, key)
			brokenKeys = append(brokenKeys, key)
			continue
		}

		if record.PlayerID == "" {
			fmt.Printf("✗ Missing player id in %s\n", key)
			brokenKeys = append(brokenKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d broken records\n", checkedCount, len(brokenKeys))

	if len(brokenKeys) == 0 {
		fmt.Println("No broken session records found!")
		return
	}

	fmt.Println("\nBroken keys:")
	for _, key := range brokenKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these records? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range brokenKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
