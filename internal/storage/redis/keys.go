package redis

import "fmt"

// definitionsKey returns the Redis key for the LIST of round type definitions
func definitionsKey(prefix string) string {
	return fmt.Sprintf("%s:definitions", prefix)
}
