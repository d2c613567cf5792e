package utilities

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// NewPublicID generates the private per-account identifier. It is a random
// UUID disclosed only to the authenticated owner.
func NewPublicID() string {
	return uuid.NewString()
}

// NewSecureID generates the public-safe account identifier: 16 random bytes,
// hex encoded. It keys all publicly retrievable assets and must not be
// derivable from the public id or email.
func NewSecureID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// NewKSUID generates a new globally unique KSUID string.
func NewKSUID() string {
	return ksuid.New().String()
}

// NewTempName returns a unique name for scratch files (e.g. in-flight
// uploads) so concurrent requests never collide on disk.
func NewTempName() string {
	return NewKSUID()
}

// NewRequestID generates a snowflake request ID using a node ID from the
// environment variable SNOWFLAKE_NODE. If node setup fails it falls back to
// a KSUID string to ensure a unique ID is returned.
func NewRequestID() string {
	nodeEnv := os.Getenv("SNOWFLAKE_NODE")
	if nodeEnv == "" {
		return newSnowflakeIDWithNode(1)
	}
	nodeID, err := strconv.ParseInt(nodeEnv, 10, 64)
	if err != nil {
		return newSnowflakeIDWithNode(1)
	}
	return newSnowflakeIDWithNode(nodeID)
}

func newSnowflakeIDWithNode(nodeID int64) string {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return NewKSUID()
	}
	return node.Generate().String()
}
