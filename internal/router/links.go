package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

//	@Summary		API root
//	@Description	Lists the general endpoints and the API versions
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	base := c.GetString(ContextURL)

	c.JSON(http.StatusOK, RootResponse{Links: RootLinks{
		Docs:    base + "/docs/index.html",
		Healthz: base + "/healthz",
		Version: base + "/version",
		V1:      base + "/v1",
	}})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

//	@Summary		API version
//	@Description	Returns the version of the running backend
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{Data: VersionObject{Version: version}})
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	User    string `json:"user" example:"https://example.com/api/v1/user"`
	Wallet  string `json:"wallet" example:"https://example.com/api/v1/wallet"`
	Expense string `json:"expense" example:"https://example.com/api/v1/expense"`
	Budget  string `json:"budget" example:"https://example.com/api/v1/budget"`
	Item    string `json:"item" example:"https://example.com/api/v1/item"`
}

//	@Summary		v1 API
//	@Description	Lists the resource endpoints of v1
//	@Tags			General
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	base := c.GetString(ContextURL) + "/v1"

	c.JSON(http.StatusOK, V1Response{Links: V1Links{
		User:    base + "/user",
		Wallet:  base + "/wallet",
		Expense: base + "/expense",
		Budget:  base + "/budget",
		Item:    base + "/item",
	}})
}
