package cardscript

import (
	"fmt"
	"strings"
)

const DefaultImageHost = "http://magiccards.info/scans/en"

const missingImageMessage = "%s has no identifying number - cannot set image property."

// ImageURL builds the reference link of a printing. A printing with only an
// alternate identifier gets the bare set code, which the script loader
// already understands. The last value is false when neither identifier
// is available.
func ImageURL(host, setCode, number, alternateId string) (string, bool) {
	setCode = strings.ToLower(setCode)
	switch {
	case number != "":
		return fmt.Sprintf("%s/%s/%s.jpg", strings.TrimSuffix(host, "/"), setCode, number), true
	case alternateId != "":
		return setCode, true
	}
	return "", false
}
