package schema

import (
	"time"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/result"
)

// Field names checked by the validator.
const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldStartDate   = "startDate"
	fieldEndDate     = "endDate"
	fieldLocation    = "location"
	fieldOrganizer   = "organizer"
	fieldSubEvent    = "subEvent"
	fieldOffers      = "offers"
)

var (
	seriesRequiredFields = []string{fieldName, fieldDescription, fieldLocation, fieldOrganizer}
	eventRequiredFields  = []string{fieldName, fieldDescription, fieldStartDate, fieldEndDate}
	offerRequiredFields  = []string{"price", "priceCurrency", "availability"}
)

// timestampDisplayLayout renders resolved dates in messages.
const timestampDisplayLayout = time.RFC3339

// Validate applies the rules for the record's kind. Records of any other kind
// produce an empty result. Event rules only ever add errors.
func Validate(record Record) result.Result {
	var res result.Result

	switch KindOf(record) {
	case KindEventSeries:
		validateSeries(record, &res)
	case KindEvent:
		validateEvent(record, &res)
	case KindUnrecognized:
	}

	return res
}

func validateSeries(series Record, res *result.Result) {
	for _, field := range seriesRequiredFields {
		if !series.Has(field) {
			res.Errorf("Missing required field for EventSeries: %s", field)
		}
	}

	raw, ok := series[fieldSubEvent]
	if !ok {
		return
	}

	switch sub := raw.(type) {
	case []any:
		for i, item := range sub {
			event, isRecord := asRecord(item)
			if !isRecord {
				res.Errorf("Invalid subEvent format at index %d in event series %s", i, series.label())
				continue
			}
			validateEvent(event, res)
		}
	default:
		// A lone object is a one-element sequence in JSON-LD.
		event, isRecord := asRecord(sub)
		if !isRecord {
			res.Errorf("Invalid subEvent format in event series %s", series.label())
			return
		}
		validateEvent(event, res)
	}
}

func validateEvent(event Record, res *result.Result) {
	for _, field := range eventRequiredFields {
		if !event.Has(field) {
			res.Errorf("Missing required field for Event: %s", field)
		}
	}

	if event.Has(fieldStartDate) && event.Has(fieldEndDate) {
		validateDates(event, res)
	}

	if event.Has(fieldOffers) {
		validateOffers(event, res)
	}
}

func validateDates(event Record, res *result.Result) {
	start := ParseTimestamp(fieldStartDate, event[fieldStartDate])
	if start.Err != nil {
		res.Errorf("Invalid date format in event %s: %v", event.label(), start.Err)
		return
	}

	end := ParseTimestamp(fieldEndDate, event[fieldEndDate])
	if end.Err != nil {
		res.Errorf("Invalid date format in event %s: %v", event.label(), end.Err)
		return
	}

	if end.Time.Before(start.Time) {
		res.Errorf("End date %s is before start date %s for event: %s",
			end.Time.Format(timestampDisplayLayout),
			start.Time.Format(timestampDisplayLayout),
			event.label(),
		)
	}
}

func validateOffers(event Record, res *result.Result) {
	offers, ok := asRecord(event[fieldOffers])
	if !ok {
		res.Errorf("Invalid offers format in event %s", event.label())
		return
	}

	for _, field := range offerRequiredFields {
		if !offers.Has(field) {
			res.Errorf("Missing required field in offers for event %s: %s", event.label(), field)
		}
	}
}
