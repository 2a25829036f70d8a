package net

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMachineIP(t *testing.T) {
	ip := net.ParseIP(GetMachineIP())
	if assert.NotNil(t, ip) {
		assert.NotNil(t, ip.To4())
	}
}

func TestUsable(t *testing.T) {
	assert.True(t, usable(net.ParseIP("192.168.1.20")))
	assert.False(t, usable(net.ParseIP("169.254.3.4")))
	assert.False(t, usable(net.ParseIP("127.0.0.1")))
	assert.False(t, usable(net.ParseIP("fe80::1")))
}

func TestIsVirtual(t *testing.T) {
	assert.True(t, isVirtual("docker0"))
	assert.True(t, isVirtual("veth12ab"))
	assert.False(t, isVirtual("eth0"))
}
