package settings

import "time"

type number interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

type (
	Headers struct {
		// Number is the capacity of the header storage each connection owns. A request
		// with more headers than that is rejected
		Number int
	}

	TCP struct {
		// ReadBufferSize is a size of the buffer a request is read into. The whole request,
		// including its body, must fit into it, otherwise it's rejected
		ReadBufferSize int
		// ReadTimeout limits the time a client has to send its request
		ReadTimeout time.Duration
		// WriteTimeout limits the time given to transmit the response
		WriteTimeout time.Duration
	}
)

type Settings struct {
	Headers Headers
	TCP     TCP
}

func Default() Settings {
	return Settings{
		Headers: Headers{
			Number: 32,
		},
		TCP: TCP{
			ReadBufferSize: 2048,
			ReadTimeout:    90 * time.Second,
			WriteTimeout:   30 * time.Second,
		},
	}
}

// Fill takes some settings and fills it with default values
// everywhere where it is not filled
func Fill(original Settings) (modified Settings) {
	defaultSettings := Default()

	original.Headers.Number = customOrDefault(
		original.Headers.Number, defaultSettings.Headers.Number,
	)
	original.TCP.ReadBufferSize = customOrDefault(
		original.TCP.ReadBufferSize, defaultSettings.TCP.ReadBufferSize,
	)
	original.TCP.ReadTimeout = time.Duration(customOrDefault(
		int64(original.TCP.ReadTimeout), int64(defaultSettings.TCP.ReadTimeout),
	))
	original.TCP.WriteTimeout = time.Duration(customOrDefault(
		int64(original.TCP.WriteTimeout), int64(defaultSettings.TCP.WriteTimeout),
	))

	return original
}

func customOrDefault[T number](custom, defaultVal T) T {
	if custom == 0 {
		return defaultVal
	}

	return custom
}
