package redis

import (
	"fmt"
	"strings"
)

// KeyPrefix is the root of every key scoreline writes.
const KeyPrefix = "scoreline:"

// Key returns the Redis key for key inside namespace.
// Example: Key("default", "favorites") == "scoreline:default:favorites"
func Key(namespace, key string) string {
	return KeyPrefix + namespace + ":" + key
}

// NamespacePattern matches every key of a namespace (for SCAN).
func NamespacePattern(namespace string) string {
	return KeyPrefix + namespace + ":*"
}

// ExtractKey strips the prefix and namespace from a Redis key.
func ExtractKey(namespace, redisKey string) (string, error) {
	prefix := KeyPrefix + namespace + ":"
	if !strings.HasPrefix(redisKey, prefix) || len(redisKey) == len(prefix) {
		return "", fmt.Errorf("invalid key for namespace %s: %s", namespace, redisKey)
	}
	return redisKey[len(prefix):], nil
}
