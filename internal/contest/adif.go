package contest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// ADIF renders the full contact set as an ADIF 3.1.4 log, one record per
// contact terminated by <EOR>, for import into general-purpose logging
// software. Contacts are rendered chronologically. The output contains no
// generation timestamp, so the same contact set always produces the same
// bytes.
//
// Returns a *SerializationError if any contact is missing a required field;
// no partial log is ever produced.
func ADIF(contacts []domain.Contact) (string, error) {
	var b strings.Builder

	b.WriteString("ADIF export from WFD Logger\n")
	b.WriteString("\n")
	b.WriteString(adifField("ADIF_VER", "3.1.4"))
	b.WriteString("\n")
	b.WriteString(adifField("PROGRAMID", "WFD Logger"))
	b.WriteString("\n")
	b.WriteString("<EOH>\n")
	b.WriteString("\n")

	for _, c := range chronological(contacts) {
		if err := validateForExport("adif", c); err != nil {
			return "", err
		}

		fields := []string{
			adifField("CALL", strings.ToUpper(c.Callsign)),
			adifField("QSO_DATE", c.ContactedAt.UTC().Format("20060102")),
			adifField("TIME_ON", c.ContactedAt.UTC().Format("150405")),
			adifField("FREQ", strconv.FormatFloat(c.Frequency, 'f', 3, 64)),
			adifField("MODE", string(c.Mode)),
			adifField("RST_SENT", c.RSTSent),
			adifField("RST_RCVD", c.RSTReceived),
			adifField("STX_STRING", c.ExchangeSent),
			adifField("SRX_STRING", c.Exchange.String()),
			adifField("STATE", c.Exchange.Section),
			adifField("OPERATOR", c.OperatorCallsign),
			adifField("NOTES", c.Notes),
			adifField("CONTEST_ID", "WFD"),
			"<EOR>",
		}

		b.WriteString(strings.Join(fields, ""))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// adifField renders one length-prefixed ADIF tag, e.g. <CALL:4>W1AW.
// Empty values render nothing: ADIF omits absent fields entirely.
func adifField(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("<%s:%d>%s", name, len(value), value)
}
