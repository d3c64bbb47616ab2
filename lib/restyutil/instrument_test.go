package restyutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

type memoryOutput map[string]string

func (o memoryOutput) Write(id string, contents string) {
	o[id] = contents
}

func TestInstrumentClient(t *testing.T) {
	client := resty.New()
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", "https://example.test/page",
		httpmock.NewStringResponder(200, "<html>hello</html>"))

	output := memoryOutput{}
	InstrumentClient(client, "test", output)

	for i := 0; i < 2; i++ {
		res, err := client.R().
			SetHeader("x-test", "yes").
			Get("https://example.test/page")
		require.NoError(t, err)
		require.Equal(t, 200, res.StatusCode())
	}

	require.Len(t, output, 2)
	message := output["1"]
	require.Contains(t, message, "GET https://example.test/page")
	require.Contains(t, message, "X-Test: yes")
	require.True(t, strings.HasSuffix(message, "<html>hello</html>"))
	require.Contains(t, output, "2")
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	output.Write("7", "contents")
	contents, err := os.ReadFile(filepath.Join(dir, "7.txt"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))

	// recreating the output clears earlier dumps
	_, err = NewFilesystemOutput(dir)
	require.NoError(t, err)
	require.NoFileExists(t, filepath.Join(dir, "7.txt"))
}
