package steps

import (
	"context"
	"fmt"
	"strings"

	"green-link/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type FeatureContext struct {
	apiDriver *driver.APIDriver
	response  *resty.Response
	body      gjson.Result
	cropID    string
	itemIDs   []string
	runID     string
	require   *require.Assertions
	t         godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, fc.theResponseFieldShouldBe)
	ctx.Then(`^the response should report errors for "([^"]*)"$`, fc.theResponseShouldReportErrorsFor)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain node information$`, fc.theResponseShouldContainNodeInformation)

	// Crop steps
	ctx.When(`^I create a crop with:$`, fc.iCreateACropWith)
	ctx.Given(`^a crop exists with:$`, fc.aCropExistsWith)
	ctx.When(`^I get the crop$`, fc.iGetTheCrop)
	ctx.When(`^I update the crop with:$`, fc.iUpdateTheCropWith)
	ctx.When(`^I delete the crop$`, fc.iDeleteTheCrop)
	ctx.When(`^I search crops for "([^"]*)"$`, fc.iSearchCropsFor)
	ctx.When(`^I export crops as "([^"]*)"$`, fc.iExportCropsAs)
	ctx.Then(`^the crop list should contain "([^"]*)"$`, fc.theCropListShouldContain)
	ctx.Then(`^the download should be named "([^"]*)"$`, fc.theDownloadShouldBeNamed)

	// Inventory steps
	ctx.When(`^I add an inventory item "([^"]*)" named "([^"]*)" with stock (-?\d+)$`, fc.iAddAnInventoryItem)
	ctx.Given(`^an inventory item "([^"]*)" named "([^"]*)" with stock (\d+)$`, fc.anInventoryItemExists)
	ctx.When(`^I get the inventory item "([^"]*)"$`, fc.iGetTheInventoryItem)
	ctx.When(`^I update the inventory item "([^"]*)" with:$`, fc.iUpdateTheInventoryItemWith)
	ctx.When(`^I delete the inventory item "([^"]*)"$`, fc.iDeleteTheInventoryItem)
	ctx.When(`^I list low stock items$`, fc.iListLowStockItems)
	ctx.When(`^I list low stock items below (\d+)$`, fc.iListLowStockItemsBelow)
	ctx.Then(`^the low stock list should contain exactly "([^"]*)"$`, fc.theLowStockListShouldContainExactly)

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		fc.cleanup()
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.body = gjson.Result{}
	fc.cropID = ""
	fc.itemIDs = nil
	fc.runID = uuid.NewString()[:8]
}

// cleanup removes what the scenario created so reruns against the same
// server start clean.
func (fc *FeatureContext) cleanup() {
	if fc.cropID != "" {
		_, _ = fc.apiDriver.DeleteCrop(fc.cropID)
	}
	for _, itemID := range fc.itemIDs {
		_, _ = fc.apiDriver.DeleteItem(itemID)
	}
}

// scoped makes business keys unique per scenario run.
func (fc *FeatureContext) scoped(key string) string {
	return fmt.Sprintf("%s-%s", key, fc.runID)
}

func (fc *FeatureContext) unscoped(key string) string {
	return strings.TrimSuffix(key, "-"+fc.runID)
}

func (fc *FeatureContext) record(response *resty.Response, err error) error {
	if err != nil {
		return err
	}
	fc.response = response
	fc.body = gjson.ParseBytes(response.Body())
	return nil
}
