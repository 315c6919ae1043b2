package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/budget-planner/backend/internal/controllers"
	"github.com/budget-planner/backend/internal/models"
	"github.com/budget-planner/backend/internal/password"
	"github.com/budget-planner/backend/test"
)

func (suite *TestSuiteStandard) TestSignUp() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, endpoint("/user/signUp", url.Values{
		"name":     {"Jane Doe"},
		"login":    {"jane_doe"},
		"password": {testPassword},
	}), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("User successfully created.", response.Message)

	suite.Assert().Equal(int64(1), suite.count(&models.User{}))
	suite.Assert().Equal(int64(1), suite.count(&models.Wallet{}))

	user, err := models.UserByLogin(suite.controller.DB, "jane_doe")
	suite.Require().Nil(err)
	suite.Assert().Equal("Jane Doe", user.Name)
	suite.Assert().NotEqual(testPassword, user.PasswordHash)

	match, err := password.Verify(testPassword, user.PasswordHash)
	suite.Assert().Nil(err)
	suite.Assert().True(match)
}

func (suite *TestSuiteStandard) TestSignUpForm() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, endpoint("/user/signUp", nil), url.Values{
		"name":     {"Jane Doe"},
		"login":    {"jane_doe"},
		"password": {testPassword},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestSignUpMissingParameter() {
	tests := []struct {
		name    string
		values  url.Values
		missing string
	}{
		{"Nothing", url.Values{}, "name"},
		{"Name only", url.Values{"name": {"Jane"}}, "login"},
		{"No password", url.Values{"name": {"Jane"}, "login": {"jane_doe"}}, "password"},
		{"No name", url.Values{"login": {"jane_doe"}, "password": {testPassword}}, "name"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, endpoint("/user/signUp", tt.values), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			suite.Assert().Equal("The request is missing the required parameter '"+tt.missing+"'.", test.DecodeError(t, r.Body.Bytes()))
		})
	}

	suite.Assert().Equal(int64(0), suite.count(&models.User{}))
}

func (suite *TestSuiteStandard) TestSignUpRejected() {
	suite.createTestUser("taken_login")

	tests := []struct {
		name     string
		login    string
		password string
		status   int
		message  string
	}{
		{"Login taken", "taken_login", testPassword, http.StatusForbidden, "Username already exists."},
		{"Login taken takes precedence", "taken_login", "short", http.StatusForbidden, "Username already exists."},
		{"Login too short", "jane", testPassword, http.StatusUnprocessableEntity, "Invalid username format. Username must be 5-20 characters long. Latin letters, digits and _ are allowed."},
		{"Login too long", "abcdefghijklmnopqrstu", testPassword, http.StatusUnprocessableEntity, "Invalid username format. Username must be 5-20 characters long. Latin letters, digits and _ are allowed."},
		{"Login with space", "jane doe", testPassword, http.StatusUnprocessableEntity, "Invalid username format. Username must be 5-20 characters long. Latin letters, digits and _ are allowed."},
		{"Login format before password", "jäne_doe", "short", http.StatusUnprocessableEntity, "Invalid username format. Username must be 5-20 characters long. Latin letters, digits and _ are allowed."},
		{"Password too short", "jane_doe", "1234567", http.StatusUnprocessableEntity, "Invalid password format. Password must be at least 8 characters long."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, endpoint("/user/signUp", url.Values{
				"name":     {"Jane"},
				"login":    {tt.login},
				"password": {tt.password},
			}), "")
			test.AssertHTTPStatus(t, &r, tt.status)
			suite.Assert().Equal(tt.message, test.DecodeError(t, r.Body.Bytes()))
		})
	}

	suite.Assert().Equal(int64(1), suite.count(&models.User{}))
	suite.Assert().Equal(int64(1), suite.count(&models.Wallet{}))
}

func (suite *TestSuiteStandard) TestGetMe() {
	user, wallet := suite.createTestUser("jane_doe")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, endpoint("/user/getMe", nil), "", auth("jane_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.UserMeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(controllers.UserMeResponse{
		UserID:   user.ID,
		UserName: "Test jane_doe",
		WalletID: wallet.ID,
	}, response)
}

func (suite *TestSuiteStandard) TestGetMeUnauthorized() {
	suite.createTestUser("jane_doe")

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"No credentials", map[string]string{}},
		{"Wrong password", test.BasicAuth("jane_doe", "wrong password")},
		{"Unknown login", test.BasicAuth("john_doe", testPassword)},
		{"Not basic auth", map[string]string{"Authorization": "Bearer jane_doe"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, endpoint("/user/getMe", nil), "", tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			suite.Assert().Equal(`Basic realm="Authentication Required"`, r.Header().Get("WWW-Authenticate"))
			suite.Assert().Equal("Unauthorized Access", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestGetMeWithoutWallet() {
	_, wallet := suite.createTestUser("jane_doe")
	suite.Require().Nil(suite.controller.DB.Delete(&wallet).Error)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, endpoint("/user/getMe", nil), "", auth("jane_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestGetMeDatabaseError() {
	suite.createTestUser("jane_doe")
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, endpoint("/user/getMe", nil), "", auth("jane_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "please contact your server administrator")
}

func (suite *TestSuiteStandard) TestUserOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/user/getMe", "OPTIONS, GET"},
		{"/user/signUp", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, endpoint(tt.path, nil), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}
