package steps

import (
	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iCreateACropWith(table *godog.Table) error {
	if err := fc.record(fc.apiDriver.CreateCrop(tableFields(table))); err != nil {
		return err
	}
	if id := fc.body.Get("id").String(); id != "" {
		fc.cropID = id
	}
	return nil
}

func (fc *FeatureContext) aCropExistsWith(table *godog.Table) error {
	if err := fc.iCreateACropWith(table); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode(), "creating crop: %s", fc.response.String())
	return nil
}

func (fc *FeatureContext) iGetTheCrop() error {
	return fc.record(fc.apiDriver.GetCrop(fc.cropID))
}

func (fc *FeatureContext) iUpdateTheCropWith(table *godog.Table) error {
	return fc.record(fc.apiDriver.UpdateCrop(fc.cropID, tableFields(table)))
}

func (fc *FeatureContext) iDeleteTheCrop() error {
	return fc.record(fc.apiDriver.DeleteCrop(fc.cropID))
}

func (fc *FeatureContext) iSearchCropsFor(query string) error {
	return fc.record(fc.apiDriver.ListCrops(query))
}

func (fc *FeatureContext) iExportCropsAs(format string) error {
	return fc.record(fc.apiDriver.ExportCrops(format))
}

func (fc *FeatureContext) theCropListShouldContain(name string) error {
	for _, crop := range fc.body.Get("data").Array() {
		if crop.Get("name").String() == name {
			return nil
		}
	}
	fc.require.Failf("crop not listed", "%s not in %s", name, fc.body.Raw)
	return nil
}

func (fc *FeatureContext) theDownloadShouldBeNamed(filename string) error {
	fc.require.Contains(fc.response.Header().Get("Content-Disposition"), filename)
	return nil
}
