package profile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"scanrunner/internal/profile"
	mockprofile "scanrunner/internal/profile/mock"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/serrors"
	mockstorage "scanrunner/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	task := domain.ScanTask{ID: 4, UserID: 2, Target: "https://example.com"}
	taskProfile := domain.ScanProfile{ID: 10, Name: "fast", Body: "fast"}
	userDefault := domain.ScanProfile{ID: 11, UserID: 2, Name: "mine", IsDefault: true}
	boom := errors.New("boom")

	tests := []struct {
		name        string
		setup       func(s *mockstorage.MockAllStorage, m *mockprofile.MockMaterializer)
		wantProfile domain.ProfileID
		wantKind    error
		wantErr     error
	}{
		{
			name: "task profile wins",
			setup: func(s *mockstorage.MockAllStorage, m *mockprofile.MockMaterializer) {
				s.EXPECT().TaskProfiles(gomock.Any(), task.ID).
					Return([]domain.ScanProfile{taskProfile, {ID: 12, Name: "full"}}, nil)
				m.EXPECT().Materialize(gomock.Any(), taskProfile, profile.TemplateData{
					ReportPath: filepath.Join("/var/tmp/run", "report.xml"),
					Target:     task.Target,
					TaskID:     task.ID,
				}, "/var/tmp/run").Return("/var/tmp/run/fast.pw3af", nil)
			},
			wantProfile: taskProfile.ID,
		},
		{
			name: "falls back to default profile",
			setup: func(s *mockstorage.MockAllStorage, m *mockprofile.MockMaterializer) {
				s.EXPECT().TaskProfiles(gomock.Any(), task.ID).Return(nil, nil)
				s.EXPECT().DefaultProfile(gomock.Any(), task.UserID).Return(&userDefault, nil)
				m.EXPECT().Materialize(gomock.Any(), userDefault, gomock.Any(), "/var/tmp/run").
					Return("/var/tmp/run/mine.pw3af", nil)
			},
			wantProfile: userDefault.ID,
		},
		{
			name: "no profile at all",
			setup: func(s *mockstorage.MockAllStorage, _ *mockprofile.MockMaterializer) {
				s.EXPECT().TaskProfiles(gomock.Any(), task.ID).Return([]domain.ScanProfile{}, nil)
				s.EXPECT().DefaultProfile(gomock.Any(), task.UserID).Return(nil, nil)
			},
			wantKind: serrors.ErrProfileNotFound,
		},
		{
			name: "storage error",
			setup: func(s *mockstorage.MockAllStorage, _ *mockprofile.MockMaterializer) {
				s.EXPECT().TaskProfiles(gomock.Any(), task.ID).Return(nil, boom)
			},
			wantErr: boom,
		},
		{
			name: "materializer error",
			setup: func(s *mockstorage.MockAllStorage, m *mockprofile.MockMaterializer) {
				s.EXPECT().TaskProfiles(gomock.Any(), task.ID).Return([]domain.ScanProfile{taskProfile}, nil)
				m.EXPECT().Materialize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", boom)
			},
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			strg := mockstorage.NewMockAllStorage(ctrl)
			materializer := mockprofile.NewMockMaterializer(ctrl)
			tt.setup(strg, materializer)

			res, err := profile.NewResolver(strg, materializer).Resolve(context.Background(), task, "/var/tmp/run", "report.xml")
			switch {
			case tt.wantKind != nil:
				require.ErrorIs(t, err, tt.wantKind)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.wantProfile, res.Profile.ID)
				require.Equal(t, "/var/tmp/run/report.xml", res.ReportPath)
				require.NotEmpty(t, res.ProfilePath)
			}
		})
	}
}

func TestFileMaterializer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.xml")
	p := domain.ScanProfile{
		ID:   1,
		Name: "audit/full",
		Body: "[output.xmlFile]\nfileName = {{.ReportPath}}\n\n[target]\ntarget = {{.Target}}\n",
	}

	path, err := profile.FileMaterializer{}.Materialize(context.Background(), p, profile.TemplateData{
		ReportPath: reportPath,
		Target:     "https://example.com",
		TaskID:     3,
	}, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "audit_full"+profile.Extension), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "fileName = "+reportPath)
	require.Contains(t, string(content), "target = https://example.com")
}

func TestFileMaterializer_BadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := profile.FileMaterializer{}

	_, err := m.Materialize(context.Background(), domain.ScanProfile{Name: "broken", Body: "{{.ReportPath"},
		profile.TemplateData{}, dir)
	require.Error(t, err)

	_, err = m.Materialize(context.Background(), domain.ScanProfile{Name: "unknown", Body: "{{.Missing}}"},
		profile.TemplateData{}, dir)
	require.Error(t, err)
}
