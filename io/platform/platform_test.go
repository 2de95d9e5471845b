// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"fmt"
	"testing"
)

type urlRecorder struct {
	urls []string
}

func (r *urlRecorder) MacOS(e MacOSEvent) bool {
	return VisitMacOS[bool](e, r)
}

func (r *urlRecorder) ReceivedURL(url string) bool {
	r.urls = append(r.urls, url)
	return true
}

func TestVisit(t *testing.T) {
	r := new(urlRecorder)
	var e Event = MacOS{Event: ReceivedURL{URL: "myapp://open?id=1"}}
	if !Visit[bool](e, r) {
		t.Fatal("visitor did not handle event")
	}
	if len(r.urls) != 1 || r.urls[0] != "myapp://open?id=1" {
		t.Errorf("recorded %q", r.urls)
	}
}

func TestVisitNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Visit(nil) did not panic")
		}
	}()
	Visit[bool](nil, new(urlRecorder))
}

func TestEquality(t *testing.T) {
	a := Event(MacOS{Event: ReceivedURL{URL: "a"}})
	if a != Event(MacOS{Event: ReceivedURL{URL: "a"}}) {
		t.Error("equal URLs compare unequal")
	}
	if a == Event(MacOS{Event: ReceivedURL{URL: "b"}}) {
		t.Error("different URLs compare equal")
	}
}

func TestString(t *testing.T) {
	e := MacOS{Event: ReceivedURL{URL: "https://example.com"}}
	if got, want := fmt.Sprint(e), `MacOS(ReceivedURL("https://example.com"))`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
