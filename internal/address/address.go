package address

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

const DefaultHost = "0.0.0.0"

var ErrNoPort = errors.New("no port given")

type Address struct {
	Host string
	Port uint16
}

// Parse splits the address into host and port. Omitted host is replaced with DefaultHost,
// however port must always be presented. Port 0 is allowed and lets the system pick one
func Parse(addr string) (Address, error) {
	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		return Address{}, ErrNoPort
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return Address{}, fmt.Errorf("invalid port: %s", rawPort)
	}

	if len(host) == 0 {
		host = DefaultHost
	}

	return Address{
		Host: host,
		Port: uint16(port),
	}, nil
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.FormatUint(uint64(a.Port), 10))
}
