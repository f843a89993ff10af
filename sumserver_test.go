package sumserver

import (
	"fmt"
	"net"
	"testing"

	"github.com/hupe1980/sumserver/internal/testutil"
	"github.com/hupe1980/sumserver/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumServer_EndToEnd(t *testing.T) {
	srv := New(func(o *Options) {
		o.Registry = registry.NewInMemoryRegistry()
	})
	require.NoError(t, srv.Start(0))
	defer srv.Stop()

	addr := fmt.Sprintf("127.0.0.1:%d", srv.Addr().(*net.TCPAddr).Port)

	c := testutil.Dial(t, addr)
	defer c.Close()

	assert.Equal(t, "Welcome! Please enter an integer number or 'list' command.\r\n", c.ReadLine())

	c.SendLine("40")
	assert.Equal(t, "Current sum: 40\r\n", c.ReadLine())
	c.SendLine("2")
	assert.Equal(t, "Current sum: 42\r\n", c.ReadLine())
}
