//go:build ignore

// Публикует тестовую задачу выгрузки в stream:export:request и ждёт ответ воркера.
//
//	go run scripts/publish_export.go -kind districts -format xlsx -seed 42
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	kind := flag.String("kind", string(domain.DatasetStates), "dataset kind")
	format := flag.String("format", string(domain.ExportFormatCSV), "csv or xlsx")
	seed := flag.Int64("seed", -1, "seed, negative for unseeded")
	regions := flag.String("regions", "", "comma separated regions")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.ExportRequestEvent{
		JobID:     uuid.New(),
		Kind:      domain.DatasetKind(*kind),
		Format:    domain.ExportFormat(*format),
		CreatedAt: time.Now().UTC(),
	}
	if *seed >= 0 {
		s := uint64(*seed)
		event.Seed = &s
	}
	if *regions != "" {
		event.Regions = strings.Split(*regions, ",")
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamExportRequest,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamExportRequest)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Job ID: %s\n", event.JobID)
	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamExportDone)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{domain.StreamExportDone, "0"},
				Count:   100,
				Block:   -1,
			}).Result()
			if err != nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					raw, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}
					var done domain.ExportDoneEvent
					if err := json.Unmarshal([]byte(raw), &done); err != nil || done.JobID != event.JobID {
						continue
					}

					if done.Error != "" {
						fmt.Printf("Export failed: %s\n", done.Error)
						return
					}
					fmt.Printf("Export done: %d rows, download /api/v1/exports/%s\n", done.Rows, done.JobID)
					return
				}
			}
		}
	}
}
