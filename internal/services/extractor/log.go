// Package extractor turns a trustee consolidation report grid into
// normalized position records: it segments the sheet into typed sections,
// resolves bilingual column headers, decodes data rows, merges multi-row
// bond entries and derives identifiers and calendar dates.
package extractor

import "github.com/sirupsen/logrus"

var log = logrus.New()

// SetLogger installs a configured logger for this package. A nil logger
// leaves the current one in place.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}
