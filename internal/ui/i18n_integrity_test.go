package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadusama1497-dot/Age-Calculator/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in the locale JSON files.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyWinSettings,
		config.TKeyLblName,
		config.TKeyLblDOB,
		config.TKeyHelpDOB,
		config.TKeyBtnCalculate,
		config.TKeyBtnReset,
		config.TKeyBtnImport,
		config.TKeyBtnExport,
		config.TKeyBtnSettings,
		config.TKeyLblWorking,
		config.TKeyResultAge,
		config.TKeyErrNameEmpty,
		config.TKeyErrNameShort,
		config.TKeyErrDateMiss,
		config.TKeyErrDateFuture,
		config.TKeyErrDateOld,
		config.TKeyErrDateFormat,
		config.TKeyLblLanguage,
		config.TKeyHelpLang,
		config.TKeyLblDelay,
		config.TKeyHelpDelay,
		config.TKeyLblMillis,
		config.TKeyLblGeneral,
		config.TKeyLblSource,
		config.TKeyModeCardDAV,
		config.TKeyModeLocal,
		config.TKeyLblURL,
		config.TKeyHelpURL,
		config.TKeyLblUser,
		config.TKeyLblPass,
		config.TKeyBtnBrowse,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyLblFooter,
		config.TKeyNotifImportOK,
		config.TKeyNotifImportErr,
		config.TKeyNotifExportOK,
		config.TKeyNotifExportErr,
		config.TKeyEvtSummaryAge,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, locale := range []string{"active.en.json", "active.fr.json"} {
		t.Run(locale, func(t *testing.T) {
			// Adjust path if running test from internal/ui or root
			path := filepath.Join("locales", locale)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				path = filepath.Join("..", "..", "internal", "ui", "locales", locale)
				content, err = os.ReadFile(path)
			}
			require.NoErrorf(t, err, "Must load %s", locale)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			// Verify consistency
			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, locale)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, locale)
				}
			}
		})
	}
}
