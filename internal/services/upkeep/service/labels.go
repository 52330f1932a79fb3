package service

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// catalog keys, also the fallback format when a key has no entry
const (
	keyDueIn   = "Due in %d days"
	keyOverdue = "Due %d days ago"
	keyEvery   = "Every %d days"
)

// newPrinter builds the english catalog for relative due dates and rates
func newPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	mustSet(b, keyDueIn, plural.Selectf(1, "",
		"=0", "Due today",
		"=1", "Due tomorrow",
		plural.Other, keyDueIn))
	mustSet(b, keyOverdue, plural.Selectf(1, "",
		"=1", "Due yesterday",
		plural.Other, keyOverdue))
	mustSet(b, keyEvery, plural.Selectf(1, "",
		"=1", "Every day",
		"=7", "Every week",
		plural.Other, keyEvery))
	return message.NewPrinter(language.English, message.Catalog(b))
}

func mustSet(b *catalog.Builder, key string, msg catalog.Message) {
	if err := b.Set(language.English, key, msg); err != nil {
		panic("upkeep: catalog " + key + ": " + err.Error())
	}
}

// dueLabel describes days until due, negative days are overdue
func dueLabel(p *message.Printer, days int) string {
	if days < 0 {
		return p.Sprintf(keyOverdue, -days)
	}
	return p.Sprintf(keyDueIn, days)
}

func rateLabel(p *message.Printer, cooldown int) string {
	return p.Sprintf(keyEvery, cooldown)
}
