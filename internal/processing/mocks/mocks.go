package mocks

import (
	"context"

	"ncth_weapons/internal/app"
)

// MockTableLoader is a test double for tables.Loader
type MockTableLoader struct {
	// Responses to return
	Tables    app.Tables
	LoadError error

	// Call tracking
	LoadCalled bool
}

func (m *MockTableLoader) Load() (app.Tables, error) {
	m.LoadCalled = true
	if m.LoadError != nil {
		return app.Tables{}, m.LoadError
	}
	return m.Tables, nil
}

// MockSink is a test double for the export sinks
type MockSink struct {
	WriteError error

	WriteCalled     bool
	WriteCalledWith []app.OutputRow
}

func (m *MockSink) Write(ctx context.Context, rows []app.OutputRow) error {
	m.WriteCalled = true
	m.WriteCalledWith = rows
	return m.WriteError
}

// MockPublisher is a test double for the Sheets and BigQuery publishers
type MockPublisher struct {
	PublisherName string
	PublishError  error

	PublishCalled     bool
	PublishCalledWith []app.OutputRow

	// Shared call log across mocks for ordering assertions
	Calls *[]string
}

func (m *MockPublisher) Name() string {
	return m.PublisherName
}

func (m *MockPublisher) Publish(ctx context.Context, rows []app.OutputRow) error {
	m.PublishCalled = true
	m.PublishCalledWith = rows
	if m.Calls != nil {
		*m.Calls = append(*m.Calls, "publish:"+m.PublisherName)
	}
	return m.PublishError
}

// MockDeployer is a test double for deployment.SSHDeployer
type MockDeployer struct {
	DeployFileError error
	DisconnectError error

	DeployFileCalled bool
	DisconnectCalled bool

	DeployFileCalledWith struct {
		LocalPath string
		Filename  string
	}
}

func (m *MockDeployer) DeployFile(localPath, filename string) error {
	m.DeployFileCalled = true
	m.DeployFileCalledWith.LocalPath = localPath
	m.DeployFileCalledWith.Filename = filename
	return m.DeployFileError
}

func (m *MockDeployer) Disconnect() error {
	m.DisconnectCalled = true
	return m.DisconnectError
}
