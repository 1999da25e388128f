package metrics

import (
	"strings"
)

func BuildFQName(serviceName, namespace string) string {
	if namespace == "" {
		return FlattenName(serviceName)
	}
	return FlattenName(serviceName) + "_" + FlattenName(namespace)
}

func FlattenName(name string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(strings.ToLower(name))
}
