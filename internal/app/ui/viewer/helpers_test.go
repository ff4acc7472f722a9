package viewer

import (
	"go.uber.org/mock/gomock"

	"lookout/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) logger.Logger {
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Warn().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()

	return log
}
