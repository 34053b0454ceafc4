package trash

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// writeTrashItem creates files/<id> with content and info/<id>.trashinfo.
func writeTrashItem(t *testing.T, root, id, path, deletionDate, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "info"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "files"), 0755))

	info := "[Trash Info]\nPath=" + path + "\nDeletionDate=" + deletionDate + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "info", id+".trashinfo"), []byte(info), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "files", id), []byte(content), 0644))
}
