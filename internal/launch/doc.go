// Package launch turns a launch description into named experiment configs.
//
// A description names a base tree (inline under `base`, or loaded through
// an Importer from `import_base`), optional `base_modify` clauses applied
// to it, and a list of `particular` entries. Each entry clones the
// modified base, applies its own `modify` clauses, and either stands alone
// or is multiplied by its `expand` tiers:
//
//	base:
//	  train: {epochs: 40, lr: 0.1}
//	base_modify:
//	  - train.epochs: 50
//	particular:
//	  - name: exp1
//	    expand:
//	      - alias: [slow, fast]
//	        train.lr: [0.5, 0.7]
//
// yields exp1_slow and exp1_fast.
package launch
