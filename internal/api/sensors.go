package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/hwtemp/internal/hwmon"
)

func registerSensorEndpoints(rest *echo.Echo, source hwmon.Source) {
	group := rest.Group("/sensor")

	group.GET("/", func(c echo.Context) error {
		return getSensors(c, source)
	})
	group.GET("/:"+urlParamName+"/", func(c echo.Context) error {
		return getSensorsOfChip(c, source)
	})
}

func getSensors(c echo.Context, source hwmon.Source) error {
	results := source.ReadAll(c.Request().Context())
	return c.JSONPretty(http.StatusOK, hwmon.Reports(results), indentationChar)
}

// returns the readings of all sensors with the given chip name, f.ex. "coretemp"
func getSensorsOfChip(c echo.Context, source hwmon.Source) error {
	name := c.Param(urlParamName)

	var matching []hwmon.Result
	for _, result := range source.ReadAll(c.Request().Context()) {
		if result.Reading != nil && result.Reading.Name == name {
			matching = append(matching, result)
		}
	}

	if len(matching) <= 0 {
		return returnNotFound(c, name)
	}
	return c.JSONPretty(http.StatusOK, hwmon.Reports(matching), indentationChar)
}
