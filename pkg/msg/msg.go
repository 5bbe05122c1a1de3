package msg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"weather-widget/configs"
	"weather-widget/pkg/log"
)

var (
	messages      = map[string]string{}
	messagesMutex sync.RWMutex
)

func init() {
	Init(configs.Env.MessagesFilePath)
}

// Init loads messages from filepath, or from the bundled messages.yml when the
// file cannot be read.
func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		content = configs.MessagesYAML
	}

	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		log.Errorf("Fail to read messages: %v", err)
		return
	}

	loaded := make(map[string]string)
	parseMessageMap("", v.AllSettings(), loaded)

	messagesMutex.Lock()
	messages = loaded
	messagesMutex.Unlock()
}

func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns the message stored under key with {0}, {1}... replaced by args.
func GetMessage(key string, args ...interface{}) string {
	messagesMutex.RLock()
	msg, exists := messages[key]
	messagesMutex.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		msg = strings.ReplaceAll(msg, placeholder, argToString(arg))
	}

	return msg
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
