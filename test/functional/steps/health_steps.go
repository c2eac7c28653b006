package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.record(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) theResponseShouldContainNodeInformation() error {
	fc.require.Equal("success", fc.body.Get("status").String())
	fc.require.NotEmpty(fc.body.Get("node_id").String(), "node_id should be present")
	fc.require.NotEmpty(fc.body.Get("version").String(), "version should be present")
	return nil
}
