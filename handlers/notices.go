package handlers

import "github.com/harshu1705/NSSS-Certificate/models"

// Fixed modal notices, one per outcome of a submission.
var (
	noticeNoEvent = models.Notice{
		Icon:              "warning",
		Title:             "No event selected",
		Text:              "Please select an event before requesting your certificate.",
		ConfirmButtonText: "OK",
	}
	noticeNotFound = models.Notice{
		Icon:              "error",
		Title:             "Name not found",
		Text:              "Sorry, your name was not found in the records.",
		ConfirmButtonText: "OK",
	}
	noticeSuccess = models.Notice{
		Icon:              "success",
		Title:             "Certificate ready",
		Text:              "Your certificate has been generated and is downloading.",
		ConfirmButtonText: "OK",
	}
	noticeRenderFailed = models.Notice{
		Icon:              "error",
		Title:             "Certificate unavailable",
		Text:              "We could not generate your certificate right now. Please try again later.",
		ConfirmButtonText: "OK",
	}
)
