package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCommandsKeepsText(t *testing.T) {
	doc := NewDocument(32)
	doc.SetAlign(AlignCenter).
		SetBold(true).
		SetFontSize(FontDouble).
		Text("CORNER SHOP").
		SetFontSize(FontNormal).
		SetBold(false).
		SetAlign(AlignLeft).
		KeyValue("Total:", "34.50").
		PartialCut()

	plain := string(StripCommands(doc.Bytes()))

	assert.Equal(t, "CORNER SHOP\nTotal:                     34.50\n", plain)
}

func TestItemLineFitsWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.ItemLine(2, "Coffee", "30.00").
		ItemLine(1, "An extremely long product description", "2.50")

	lines := strings.Split(strings.TrimSuffix(string(StripCommands(doc.Bytes())), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Len(t, line, 20)
	}
	assert.True(t, strings.HasPrefix(lines[0], "2x Coffee"))
	assert.True(t, strings.HasSuffix(lines[1], " 2.50"))
}

func TestNewDocumentDefaultsWidth(t *testing.T) {
	doc := NewDocument(0)
	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
	assert.Empty(t, StripCommands(doc.Bytes()))

	doc.Separator('=')
	assert.Equal(t, strings.Repeat("=", 32)+"\n", string(StripCommands(doc.Bytes())))
}

func TestConsolePrinterWritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf)

	doc := NewDocument(32).SetBold(true).Text("Receipt").PartialCut()
	require.NoError(t, p.Print(doc.Bytes()))

	assert.Equal(t, "Receipt\n", buf.String())
	assert.True(t, p.IsConnected())
	assert.NoError(t, p.Close())
}

func TestNewPrinterFromConfig(t *testing.T) {
	tests := []struct {
		name        string
		printerType string
		usbPath     string
		address     string
		wantErr     bool
	}{
		{name: "none", printerType: "none"},
		{name: "empty", printerType: ""},
		{name: "console", printerType: "console"},
		{name: "usb", printerType: "usb", usbPath: "/dev/usb/lp0"},
		{name: "usb without path", printerType: "usb", wantErr: true},
		{name: "network", printerType: "network", address: "127.0.0.1:9100"},
		{name: "network without address", printerType: "network", wantErr: true},
		{name: "unknown", printerType: "bluetooth", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrinterFromConfig(tt.printerType, tt.usbPath, tt.address)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}
