package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	assessmentsTotal    atomic.Int64
	assessmentsLow      atomic.Int64
	assessmentsMedium   atomic.Int64
	assessmentsHigh     atomic.Int64
	assessmentsRejected atomic.Int64
	eventsPublishFailed atomic.Int64
)

// ObserveAssessment records one completed assessment under its triage
// category.
func ObserveAssessment(category string) {
	assessmentsTotal.Add(1)
	switch category {
	case "low":
		assessmentsLow.Add(1)
	case "medium":
		assessmentsMedium.Add(1)
	case "high":
		assessmentsHigh.Add(1)
	}
}

// ObserveRejected records an assessment request refused before reaching the
// engine.
func ObserveRejected() {
	assessmentsRejected.Add(1)
}

// ObservePublishFailure records a failed event-bus publication.
func ObservePublishFailure() {
	eventsPublishFailed.Add(1)
}

// WritePrometheus renders counters in Prometheus text exposition format.
func WritePrometheus(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	fmt.Fprintf(w, "# HELP readmission_assessments_total Number of risk assessments completed.\n")
	fmt.Fprintf(w, "# TYPE readmission_assessments_total counter\n")
	fmt.Fprintf(w, "readmission_assessments_total %d\n", assessmentsTotal.Load())

	fmt.Fprintf(w, "# HELP readmission_assessments_by_category Number of risk assessments per triage category.\n")
	fmt.Fprintf(w, "# TYPE readmission_assessments_by_category counter\n")
	fmt.Fprintf(w, "readmission_assessments_by_category{category=\"low\"} %d\n", assessmentsLow.Load())
	fmt.Fprintf(w, "readmission_assessments_by_category{category=\"medium\"} %d\n", assessmentsMedium.Load())
	fmt.Fprintf(w, "readmission_assessments_by_category{category=\"high\"} %d\n", assessmentsHigh.Load())

	fmt.Fprintf(w, "# HELP readmission_assessments_rejected_total Number of assessment requests rejected before scoring.\n")
	fmt.Fprintf(w, "# TYPE readmission_assessments_rejected_total counter\n")
	fmt.Fprintf(w, "readmission_assessments_rejected_total %d\n", assessmentsRejected.Load())

	fmt.Fprintf(w, "# HELP readmission_event_publish_failed_total Number of event-bus publications that failed.\n")
	fmt.Fprintf(w, "# TYPE readmission_event_publish_failed_total counter\n")
	fmt.Fprintf(w, "readmission_event_publish_failed_total %d\n", eventsPublishFailed.Load())
}
