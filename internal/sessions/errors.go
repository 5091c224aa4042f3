package sessions

import "github.com/sirkon/errors"

// ErrUnbalancedRelease закрытие сессии без парного открытия.
var ErrUnbalancedRelease = errors.Const("session release without a matching acquire")

// ErrUnknownSession закрытие сессии по неизвестному или уже закрытому хэндлу.
var ErrUnknownSession = errors.Const("unknown session handle")
