package contest

import (
	"fmt"
	"strings"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// Cabrillo renders the full contact set as a Cabrillo v3 log for WFD
// submission. Header tags come from the station setup, claimedScore is the
// score snapshot total computed by the caller, and contacts are rendered
// chronologically, one QSO line each, in the field order the WFD robot
// expects: frequency, mode, date, time (UTC), sent call and exchange,
// received call and exchange.
//
// Returns a *SerializationError if any contact is missing a required field;
// no partial log is ever produced.
func Cabrillo(contacts []domain.Contact, setup domain.StationSetup, claimedScore int) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "START-OF-LOG: 3.0\n")
	fmt.Fprintf(&b, "LOCATION: %s\n", setup.Section)
	fmt.Fprintf(&b, "CALLSIGN: %s\n", setup.StationCallsign)
	fmt.Fprintf(&b, "CONTEST: WFD\n")
	fmt.Fprintf(&b, "CATEGORY-OPERATOR: %s\n", categoryOperator(setup))
	fmt.Fprintf(&b, "CATEGORY-ASSISTED: NON-ASSISTED\n")
	fmt.Fprintf(&b, "CATEGORY-BAND: ALL\n")
	fmt.Fprintf(&b, "CATEGORY-MODE: MIXED\n")
	fmt.Fprintf(&b, "CATEGORY-POWER: LOW\n")
	fmt.Fprintf(&b, "CATEGORY-STATION: FIXED\n")
	fmt.Fprintf(&b, "CATEGORY-TRANSMITTER: %s\n", categoryTransmitter(setup.TxCount))
	fmt.Fprintf(&b, "CLAIMED-SCORE: %d\n", claimedScore)
	fmt.Fprintf(&b, "OPERATORS: %s\n", strings.Join(setup.Operators(), " "))
	fmt.Fprintf(&b, "NAME: %s\n", setup.OperatorName)
	fmt.Fprintf(&b, "ADDRESS: \n")
	fmt.Fprintf(&b, "ADDRESS-CITY: \n")
	fmt.Fprintf(&b, "ADDRESS-STATE-PROVINCE: \n")
	fmt.Fprintf(&b, "ADDRESS-POSTALCODE: \n")
	fmt.Fprintf(&b, "ADDRESS-COUNTRY: \n")
	fmt.Fprintf(&b, "X-EXCHANGE: %d%s\n", setup.TxCount, setup.Class)
	fmt.Fprintf(&b, "SOAPBOX: Generated by WFD Logger\n")
	fmt.Fprintf(&b, "EMAIL: \n")

	sentExchange := setup.Exchange()
	for _, c := range chronological(contacts) {
		if err := validateForExport("cabrillo", c); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "QSO: %5s %2s %s %s %s %s %s %s\n",
			CabrilloFreq(c.Frequency),
			CabrilloMode(c.Mode),
			c.ContactedAt.UTC().Format("2006-01-02"),
			c.ContactedAt.UTC().Format("1504"),
			setup.StationCallsign,
			sentExchange.String(),
			strings.ToUpper(c.Callsign),
			c.Exchange.String(),
		)
	}

	fmt.Fprintf(&b, "END-OF-LOG: \n")
	return b.String(), nil
}

// categoryOperator maps the operator roster onto the Cabrillo operator
// category tag.
func categoryOperator(setup domain.StationSetup) string {
	if len(setup.Operators()) > 1 {
		return "MULTI-OP"
	}
	return "SINGLE-OP"
}

// categoryTransmitter maps the transmitter count onto the Cabrillo
// transmitter category tag.
func categoryTransmitter(count int) string {
	switch {
	case count <= 1:
		return "ONE"
	case count == 2:
		return "TWO"
	default:
		return "UNLIMITED"
	}
}
