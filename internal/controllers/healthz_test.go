package controllers_test

import (
	"net/http"

	"github.com/budget-planner/backend/test"
)

func (suite *TestSuiteStandard) TestGetHealthz() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestGetHealthzDatabaseClosed() {
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "please contact your server administrator")
}

func (suite *TestSuiteStandard) TestOptionsHealthz() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/api/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
